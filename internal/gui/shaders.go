package gui

// The foliage program reads the tree position from vertexPosition, the
// chaos position from vertexNormal and (size, seed) from vertexTexCoord.
// Only uTime and uProgress change per frame. tree.Particle.Sample and
// tree.ShadeFoliage are the CPU mirror of these two stages.
const foliageVS = `#version 330
in vec3 vertexPosition;
in vec3 vertexNormal;
in vec2 vertexTexCoord;

uniform mat4 mvp;
uniform mat4 matView;
uniform mat4 matModel;
uniform float uTime;
uniform float uProgress;

out float vAlpha;
out float vSeed;

float easeInOutQuart(float x) {
    return x < 0.5 ? 8.0 * x * x * x * x : 1.0 - pow(-2.0 * x + 2.0, 4.0) / 2.0;
}

void main() {
    float size = vertexTexCoord.x;
    float seed = vertexTexCoord.y;

    float local = easeInOutQuart(clamp(uProgress * 1.2 - seed * 0.2, 0.0, 1.0));
    vec3 pos = mix(vertexNormal, vertexPosition, local);

    if (local > 0.8) {
        float wind = sin(uTime + pos.y * 0.5) * 0.1;
        pos.x += wind;
        pos.z += wind * 0.5;
    } else {
        pos.y += sin(uTime + pos.x) * 0.2;
    }

    float breath = sin(uTime * 2.0 + seed * 10.0) * 0.5 + 0.5;
    vec4 viewPos = matView * matModel * vec4(pos, 1.0);
    gl_PointSize = size * (1.0 + breath * 0.2) * (250.0 / -viewPos.z);
    gl_Position = mvp * vec4(pos, 1.0);

    vAlpha = 0.8 + 0.2 * breath;
    vSeed = seed;
}
`

const foliageFS = `#version 330
in float vAlpha;
in float vSeed;

uniform vec3 uBase;
uniform vec3 uRim;

out vec4 finalColor;

void main() {
    float dist = length(gl_PointCoord - vec2(0.5));
    if (dist > 0.5) discard;

    float strength = pow(1.0 - dist * 2.0, 1.5);
    float edge = smoothstep(0.3, 0.5, dist);
    vec3 color = mix(uBase * 0.8, uRim, edge * 0.6);
    if (vSeed > 0.95) color += vec3(0.5);

    finalColor = vec4(color, vAlpha * strength);
}
`

// Ornaments and the star share a lambert program with an emissive term.
const litVS = `#version 330
in vec3 vertexPosition;
in vec3 vertexNormal;

uniform mat4 mvp;
uniform mat4 matNormal;

out vec3 fragNormal;

void main() {
    fragNormal = normalize(vec3(matNormal * vec4(vertexNormal, 0.0)));
    gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`

const litFS = `#version 330
in vec3 fragNormal;

uniform vec4 colDiffuse;
uniform vec3 uLightDir;
uniform float uEmissive;

out vec4 finalColor;

void main() {
    float diffuse = max(dot(normalize(fragNormal), -uLightDir), 0.0);
    vec3 color = colDiffuse.rgb * (0.35 + 0.65 * diffuse) + colDiffuse.rgb * uEmissive;
    finalColor = vec4(color, colDiffuse.a);
}
`
